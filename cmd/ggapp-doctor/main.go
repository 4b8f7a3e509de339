// Command ggapp-doctor reports what the backend selection engine sees on
// this machine: the collected platform signals, the optional GPU probe
// result, and the backend it would pick with the reason.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggapp"
	"github.com/gogpu/ggapp/cmd/ggapp-doctor/ui"
	"github.com/gogpu/ggapp/platform"
	"github.com/gogpu/ggapp/probe"
)

func main() {
	var (
		debug     bool
		skipProbe bool
		asJSON    bool
		force     string
	)

	root := &cobra.Command{
		Use:           "ggapp-doctor",
		Short:         "Diagnose rendering backend selection",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				ggapp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			cfg := ggapp.DefaultConfiguration()
			if skipProbe {
				cfg = cfg.WithoutProbing()
			}
			if force != "" {
				kind, ok := ggapp.ParseBackendKind(force)
				if !ok {
					return fmt.Errorf("unknown backend %q (want software or accelerated)", force)
				}
				cfg = cfg.WithForcedBackend(kind)
			}

			sig := platform.Collect()
			var probed probe.Result
			if !skipProbe {
				probed = probe.Run()
				sig.GL = probed.GL
			}
			decision := ggapp.Decide(sig, cfg)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sig, probed, decision)
			}
			writeReport(cmd.OutOrStdout(), sig, probed, skipProbe, decision)
			return nil
		},
	}
	root.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.Flags().BoolVar(&skipProbe, "skip-probe", false, "Skip the offscreen GPU probe")
	root.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	root.Flags().StringVar(&force, "force", "", "Pretend the backend is forced (software|accelerated)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}

func writeReport(w io.Writer, sig platform.Signals, probed probe.Result, skipped bool, d ggapp.Decision) {
	fmt.Fprintln(w, ui.Bold("Platform signals"))
	fmt.Fprint(w, ui.KeyValues("  ",
		ui.KV("OS family", sig.OS.String()),
		ui.KV("Display server", sig.DisplayServer.String()),
		ui.KV("Remote display", ui.Bool(sig.RemoteDisplay)),
		ui.KV("RDP session", ui.Bool(sig.RDPSession)),
		ui.KV("Virtualization", sig.VirtDriver.String()),
	))

	fmt.Fprintln(w, ui.Bold("GPU probe"))
	if skipped {
		fmt.Fprint(w, ui.KeyValues("  ", ui.KV("Status", ui.Muted("skipped"))))
	} else if !probed.GL.Known() {
		fmt.Fprint(w, ui.KeyValues("  ", ui.KV("Status", ui.Warn("no usable device"))))
	} else {
		fmt.Fprint(w, ui.KeyValues("  ",
			ui.KV("Adapter", probed.Adapter),
			ui.KV("Driver", probed.Driver),
			ui.KV("GL level", probed.GL.String()),
		))
	}

	fmt.Fprintln(w, ui.Bold("Decision"))
	fmt.Fprint(w, ui.KeyValues("  ",
		ui.KV("Backend", ui.Accent(d.Kind.String())),
		ui.KV("Reason", d.Reason),
	))
}

func writeJSON(w io.Writer, sig platform.Signals, probed probe.Result, d ggapp.Decision) error {
	report := struct {
		OS            string `json:"os"`
		DisplayServer string `json:"display_server"`
		RemoteDisplay bool   `json:"remote_display"`
		RDPSession    bool   `json:"rdp_session"`
		Virtualizer   string `json:"virtualizer"`
		Adapter       string `json:"adapter,omitempty"`
		Driver        string `json:"driver,omitempty"`
		GLLevel       string `json:"gl_level,omitempty"`
		Backend       string `json:"backend"`
		Reason        string `json:"reason"`
	}{
		OS:            sig.OS.String(),
		DisplayServer: sig.DisplayServer.String(),
		RemoteDisplay: sig.RemoteDisplay,
		RDPSession:    sig.RDPSession,
		Virtualizer:   sig.VirtDriver.String(),
		Adapter:       probed.Adapter,
		Driver:        probed.Driver,
		Backend:       d.Kind.String(),
		Reason:        d.Reason,
	}
	if probed.GL.Known() {
		report.GLLevel = probed.GL.String()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
