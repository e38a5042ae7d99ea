// Package bitbake runs BitBake tooling inside a sourced build environment.
//
// The environment init script (oe-init-build-env) works by mutating the shell
// that sources it. A child process cannot hand those changes back to its
// parent, so every command that needs the environment is sent to a single
// shell as one script:
//
//	source '<init-script>' '<build-dir>' && bitbake-layers add-layer '<layer>'
//
// [Env] builds these scripts with every interpolated path shell-quoted, and
// [ShellRunner] executes them. A non-zero exit is reported as an [*ExitError]
// carrying the exit code so callers can propagate it unchanged.
//
// # Usage
//
//	env := bitbake.EnvFromSettings(settings)
//	runner := bitbake.NewShellRunner(os.Stdout, os.Stderr)
//	if err := runner.Run(ctx, env.AddLayer("/repo/sources/meta-tegra")); err != nil {
//	    var exitErr *bitbake.ExitError
//	    if errors.As(err, &exitErr) {
//	        os.Exit(exitErr.Code)
//	    }
//	}
package bitbake
