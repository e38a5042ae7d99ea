// Package hook implements the post-sync hook that prepares a Yocto build
// directory after a multi-repository checkout.
//
// The hook runs these steps strictly in order, stopping at the first failure:
//
//  1. Source the environment init script with the build directory, which
//     creates it and its conf/ files.
//  2. Append the marker-framed settings block to conf/local.conf unless the
//     marker is already there.
//  3. Register each configured layer with bitbake-layers add-layer, one
//     invocation per layer, each in a freshly sourced environment.
//  4. Optionally fetch all sources for one image (bitbake --runall=fetch).
//
// Nothing is rolled back on failure: layers registered before a failing one
// stay registered. Re-running is safe for local.conf; repeated layer
// registration is left to bitbake-layers.
//
// # Exit Codes
//
// [ExitCode] maps a Run error to the process exit status: the subprocess's
// own code for a failed command, [ExitConfigError] for bad settings and
// [ExitFailure] for everything else, including a missing local.conf.
package hook
