package main

import (
	"fmt"

	"github.com/blagojts/viper"

	"github.com/discretewater/idem/bootstrap"
	"github.com/discretewater/idem/pkg/targets"
)

func parseConfig(target targets.ImplementedTarget, v *viper.Viper) (bootstrap.Runner, targets.DBCreator, error) {
	runnerConfig := bootstrap.RunnerConfig{}
	if err := v.Unmarshal(&runnerConfig); err != nil {
		return nil, nil, fmt.Errorf("unable to decode config: %s", err)
	}

	dbc, err := target.Bootstrap(dbSpecificFlagPrefix, v)
	if err != nil {
		return nil, nil, err
	}

	return bootstrap.GetRunner(runnerConfig), dbc, nil
}
