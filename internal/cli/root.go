// Package cli implements the kiss3d command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"kiss3d"
	"kiss3d/m"
)

// EnvPrefix prefixes environment variables overriding global flags, e.g.
// KISS3D_TOL or KISS3D_LOG_LEVEL.
const EnvPrefix = "KISS3D"

var (
	ErrNotRepresentable = errors.New("null axis with a nonzero angle is not a rotation")
	ErrNotUnit          = errors.New("quaternion is not unit norm")
)

// GlobalOptions holds the settings shared by every subcommand.
type GlobalOptions struct {
	Tol      kiss3d.Float
	Output   string
	LogLevel string

	Out    io.Writer
	ErrOut io.Writer
	Log    *logrus.Logger

	vip *viper.Viper
}

// NewCmdRoot builds the kiss3d command tree writing results to out and logs
// to errOut.
func NewCmdRoot(out, errOut io.Writer) *cobra.Command {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	o := &GlobalOptions{Out: out, ErrOut: errOut, Log: log, vip: vip}

	cmd := &cobra.Command{
		Use:           "kiss3d",
		Short:         "Quaternion and axis-angle rotation calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.Complete()
		},
	}

	addGlobalFlags(cmd.PersistentFlags())
	if err := vip.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(errors.Wrap(err, "binding global flags"))
	}

	cmd.AddCommand(
		NewCmdQuat(o),
		NewCmdAxis(o),
		NewCmdRotate(o),
		NewCmdBench(o),
	)
	return cmd
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.Float64("tol", float64(m.Tol), "Tolerance for unit-norm and degeneracy checks")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.String("log-level", logrus.WarnLevel.String(), "Log level: debug, info, warning, error")
}

// markRequired panics on an unknown flag name, a programming error.
func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(errors.Wrapf(err, "marking --%s required on %s", name, cmd.Name()))
		}
	}
}

// Complete resolves flags, environment and defaults, in that order of
// precedence.
func (o *GlobalOptions) Complete() error {
	o.Tol = kiss3d.Float(o.vip.GetFloat64("tol"))
	o.Output = o.vip.GetString("output")
	o.LogLevel = o.vip.GetString("log-level")

	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	o.Log.SetLevel(level)

	switch o.Output {
	case "text", "json", "yaml":
	default:
		return errors.Errorf("unsupported output format %q (supported: text, json, yaml)", o.Output)
	}
	if o.Tol <= 0 {
		return errors.Errorf("tolerance must be positive, got %v", o.Tol)
	}

	o.Log.WithFields(logrus.Fields{
		"tol":    o.Tol,
		"output": o.Output,
	}).Debug("configuration resolved")
	return nil
}

// Print writes obj to Out in the configured format.
func (o *GlobalOptions) Print(obj fmt.Stringer) error {
	switch o.Output {
	case "json":
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding json")
		}
		_, err = fmt.Fprintf(o.Out, "%s\n", data)
		return err
	case "yaml":
		data, err := yaml.Marshal(obj)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = o.Out.Write(data)
		return err
	default:
		return kiss3d.Fprint(o.Out, obj)
	}
}

func vecFromFlag(name string, xs []float64) (kiss3d.Vec, error) {
	if len(xs) != 3 {
		return kiss3d.Vec{}, errors.Errorf("--%s needs 3 components i,j,k, got %d", name, len(xs))
	}
	return kiss3d.Vec{I: kiss3d.Float(xs[0]), J: kiss3d.Float(xs[1]), K: kiss3d.Float(xs[2])}, nil
}

func quatFromFlag(name string, xs []float64) (kiss3d.Quat, error) {
	if len(xs) != 4 {
		return kiss3d.Quat{}, errors.Errorf("--%s needs 4 components r,i,j,k, got %d", name, len(xs))
	}
	return kiss3d.Quat{
		R: kiss3d.Float(xs[0]),
		I: kiss3d.Float(xs[1]),
		J: kiss3d.Float(xs[2]),
		K: kiss3d.Float(xs[3]),
	}, nil
}

func toRadians(angle float64, degrees bool) kiss3d.Float {
	if degrees {
		return kiss3d.Float(angle) * m.Pi / 180
	}
	return kiss3d.Float(angle)
}
