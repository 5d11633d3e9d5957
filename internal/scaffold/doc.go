// Package scaffold generates StreamPU project trees. It powers the
// "hulotte create" and "hulotte add-module" commands.
//
// Generation is split in two: Plan maps a resolved project configuration to
// an ordered ArtifactSet without touching the filesystem, and Write puts a
// set on disk. The artifact list itself comes from the embedded
// artifacts.yaml catalogue, validated by the manifest package.
package scaffold
