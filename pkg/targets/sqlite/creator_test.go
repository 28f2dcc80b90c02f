package sqlite

import (
	"path/filepath"
	"testing"
)

func TestCreatorLifecycle(t *testing.T) {
	c := &dbCreator{opts: &ConnectionOptions{Path: t.TempDir()}}
	if err := c.Init(); err != nil {
		t.Fatalf("unexpected error on init: %v", err)
	}

	exists, err := c.DBExists("idem_test")
	if err != nil {
		t.Fatalf("unexpected error checking for database: %v", err)
	}
	if exists {
		t.Fatal("database should not exist before it is created")
	}

	if err := c.CreateDB("idem_test"); err != nil {
		t.Fatalf("unexpected error creating database: %v", err)
	}
	exists, err = c.DBExists("idem_test")
	if err != nil {
		t.Fatalf("unexpected error checking for database: %v", err)
	}
	if !exists {
		t.Fatal("database should exist after it is created")
	}

	if err := c.RemoveOldDB("idem_test"); err != nil {
		t.Fatalf("unexpected error dropping database: %v", err)
	}
	exists, err = c.DBExists("idem_test")
	if err != nil {
		t.Fatalf("unexpected error checking for database: %v", err)
	}
	if exists {
		t.Fatal("database should be gone after it is dropped")
	}
}

func TestInitMissingDirectory(t *testing.T) {
	c := &dbCreator{opts: &ConnectionOptions{Path: filepath.Join(t.TempDir(), "missing")}}
	if err := c.Init(); err == nil {
		t.Fatal("expected an error for a missing database directory")
	}
}

func TestRemoveOldDBMissingFile(t *testing.T) {
	c := &dbCreator{opts: &ConnectionOptions{Path: t.TempDir()}}
	if err := c.RemoveOldDB("never_created"); err != nil {
		t.Fatalf("dropping an absent database should be a no-op, got: %v", err)
	}
}
