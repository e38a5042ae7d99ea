// Package doctor checks whether a checkout is ready for, or correctly
// configured by, the post-sync hook.
//
// Checks fall into two severities. [Required] checks cover what the hook
// cannot run without: the shell, the init script and every layer directory.
// [Advisory] checks cover what the hook produces: the build directory, the
// marker block in local.conf and each layer's entry in bblayers.conf. Before
// the first sync these are expected to fail, so they never fail the run.
//
// # Usage
//
//	report := doctor.Run(settings, false)  // check only
//	report := doctor.Run(settings, true)   // also append a missing local.conf block
//	if report.Failed() > 0 { ... }
package doctor
