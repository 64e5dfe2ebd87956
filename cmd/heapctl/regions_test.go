package main

import (
	"testing"
)

func TestRegionsCommand(t *testing.T) {
	tests := []struct {
		name        string
		script      string
		wantContain []string
	}{
		{
			name:   "regions after merge",
			script: "a = malloc 100\nb = malloc 50\nfree b\nfree a\n",
			wantContain: []string{
				"0x00000000        256  free  0x00000020",
				"1 region(s)",
			},
		},
		{
			name:   "regions scenario",
			script: scenario,
			wantContain: []string{
				"0x00000000         64  used  0x00000020",
				"0x00000040         96  used  0x00000060",
				"0x000000A0         96  used  0x000000C0",
			},
		},
		{
			name:        "regions empty script",
			script:      "# nothing\n",
			wantContain: []string{"0 region(s)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			args := []string{writeScript(t, tt.script)}
			output, err := captureOutput(t, func() error {
				return runRegions(args)
			})
			if err != nil {
				t.Fatalf("runRegions() error = %v", err)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestRegionsCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	args := []string{writeScript(t, "a = malloc 10\nb = malloc 10\nfree a\n")}
	output, err := captureOutput(t, func() error {
		return runRegions(args)
	})
	if err != nil {
		t.Fatalf("runRegions() error = %v", err)
	}

	var got []regionJSON
	decodeJSON(t, output, &got)
	want := []regionJSON{
		{Offset: 0, Size: 64, Free: true, Payload: 0x20, State: "free"},
		{Offset: 64, Size: 64, Free: false, Payload: 0x60, State: "used"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d regions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("region %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := captureOutput(t, func() error {
		versionCmd.Run(versionCmd, nil)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, output, []string{"heapctl dev", "commit: none"})
}
