// Package kanshi reads, matches and rewrites kanshi display configuration
// files.
//
// A kanshi config is a list of profile blocks, each holding one directive per
// line:
//
//	profile home {
//	    output "Dell Inc. U2415 ABC123" enable
//	    mode 1920x1080@60Hz
//	    position 0,0
//	}
//
// # Parsing
//
// Parse turns the full text of a file into profiles. Directive tokens are kept
// verbatim, quotes included, so directives that are not regenerated are written
// back byte for byte. Comments are dropped and do not survive a round trip.
// Any grammar violation fails the whole parse with a *ParseError.
//
// # Matching
//
// A profile describes the set of outputs named by its output directives. Given
// the outputs currently connected, Config.Detect returns the first profile, in
// file order, whose set is exactly the same. Config.Replace then swaps the body
// of that profile for a freshly generated one while keeping the stored name;
// the refreshed profile moves to the end of the file. When nothing matches the
// generated profile is appended with its timestamped name.
//
// # Persistence
//
// Config.Save always rewrites the whole file, prefixed by a banner warning that
// the file is generated. There is no locking: callers must not run two
// load/save cycles on the same file concurrently, the later save wins.
package kanshi
