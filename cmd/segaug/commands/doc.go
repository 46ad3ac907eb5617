// Package commands defines the segaug CLI.
//
// Commands
//
//   - affine   Random affine transform of one image/label pair
//   - elastic  Random elastic deformation of one image/label pair
//   - batch    Augment directories of pairs in parallel
//   - box      Print the bounding box of a binary mask
//
// # Implementation
//
// The root command loads the configuration (YAML file, then SEGAUG_*
// environment, then explicit flags) and configures logging before any
// subcommand runs. Single-pair commands seed their source exactly like copy 0
// of the batch command, so `segaug affine` on a.png reproduces a_0.png.
package commands
