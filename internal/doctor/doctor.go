package doctor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/hehos/jetson-hooks/internal/config"
	"github.com/hehos/jetson-hooks/internal/layers"
	"github.com/hehos/jetson-hooks/internal/localconf"
)

// Run performs all checks against s. With fix set, a local.conf that exists
// but lacks the marker block gets it appended.
func Run(s config.Settings, fix bool) Report {
	var r Report
	add := func(c Check) { r.Checks = append(r.Checks, c) }

	add(checkShell(s.Shell))
	add(checkFile("init script", s.InitScriptPath()))

	statuses, bblayersErr := layers.Inspect(s)

	for _, l := range statuses {
		c := Check{Name: "layer " + l.Rel, OK: l.Exists, Detail: l.Path, Severity: Required}
		if l.Exists && !l.HasLayerConf {
			c.OK = false
			c.Detail = "conf/layer.conf missing in " + l.Path
		}
		add(c)
	}

	buildDir := Check{Name: "build directory", Detail: s.BuildDirPath(), Severity: Advisory}
	if info, err := os.Stat(s.BuildDirPath()); err == nil && info.IsDir() {
		buildDir.OK = true
	}
	add(buildDir)
	if !buildDir.OK {
		// Nothing below can exist until the hook has run.
		return r
	}

	add(checkLocalConf(s, fix))

	if bblayersErr != nil {
		add(Check{Name: "bblayers.conf", Detail: bblayersErr.Error(), Severity: Advisory})
		return r
	}
	for _, l := range statuses {
		add(Check{
			Name:     "registered " + l.Rel,
			OK:       l.Registered,
			Detail:   s.BBLayersPath(),
			Severity: Advisory,
		})
	}
	return r
}

func checkShell(shell string) Check {
	c := Check{Name: "shell", Severity: Required}
	path, err := exec.LookPath(shell)
	if err != nil {
		c.Detail = fmt.Sprintf("%s not found", shell)
		return c
	}
	c.OK = true
	c.Detail = path
	return c
}

func checkFile(name, path string) Check {
	c := Check{Name: name, Detail: path, Severity: Required}
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		c.OK = true
	}
	return c
}

func checkLocalConf(s config.Settings, fix bool) Check {
	path := s.LocalConfPath()
	c := Check{Name: "local.conf settings", Detail: path, Severity: Advisory}

	found, err := localconf.HasMarker(path, config.StartMarker)
	switch {
	case errors.Is(err, localconf.ErrNotFound):
		c.Detail = "missing " + path
		return c
	case err != nil:
		c.Detail = err.Error()
		return c
	case found:
		c.OK = true
		return c
	}

	c.Detail = "marker block missing in " + path
	if !fix {
		return c
	}
	if _, err := localconf.Ensure(path, s.Block()); err != nil {
		c.Detail = err.Error()
		return c
	}
	c.OK = true
	c.Fixed = true
	c.Detail = path
	return c
}
