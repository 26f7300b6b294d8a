package main

import "testing"

func TestFlagParsing(t *testing.T) {
	t.Parallel()

	fs, cli := newFlagSet("banter")
	err := fs.Parse([]string{
		"--config", "/tmp/custom.toml",
		"--echo-delay", "2s",
		"--bot-interval", "10s",
		"--no-bot",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cli.cfgPath != "/tmp/custom.toml" {
		t.Fatalf("cfgPath=%q", cli.cfgPath)
	}
	if cli.echoDelay != "2s" || cli.botInterval != "10s" {
		t.Fatalf("durations: echo=%q interval=%q", cli.echoDelay, cli.botInterval)
	}
	if !cli.noBot {
		t.Fatal("noBot not set")
	}
	if cli.version {
		t.Fatal("version should default to false")
	}
}

func TestFlagDefaults(t *testing.T) {
	t.Parallel()

	fs, cli := newFlagSet("banter")
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cli.cfgPath != "" || cli.echoDelay != "" || cli.botInterval != "" || cli.noBot || cli.version {
		t.Fatalf("unexpected defaults: %+v", cli)
	}
}
