// Package acquire fetches, builds and verifies the native libraries Hulotte
// projects link against. It backs the "hulotte install" command.
//
// A Pipeline runs one library through six strictly sequential stages:
// target check, version resolution, clone, configure, compile and verify.
// Every external program goes through a runtime.Runner and every question
// through a prompt.Prompter, so the whole flow runs in tests without git,
// cmake or a compiler. A stage failure is reported as a *StageError naming
// the stage and the command that failed.
//
// Installer drives a full install run on top of Pipeline: prerequisite
// probing, one pipeline per library, the optional waveform viewer download
// and the INSTALL_INFO.txt report.
package acquire
