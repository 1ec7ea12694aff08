// Package format names the configuration dialects understood by lineconf.
//
//   - [OneFormat]: OpenNebula style "KEY = value" files with bracketed
//     vectors, such as oned.conf
//   - [RCFormat]: shell style "export KEY=value" files
//
// # Related Packages
//
//   - github.com/signadot/lineconf/parse - Parse text to IR
//   - github.com/signadot/lineconf/encode - Encode IR to text
package format
