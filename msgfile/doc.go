// Package msgfile loads message table overrides from YAML, JSON, or TOML files.
//
// Format is auto-detected from extension (.yaml, .json, .toml). Nested tables
// are flattened to dot-separated keys:
//
//	int:
//	  overflow: "Too big! The largest allowed value is {max}"
//
// Example:
//
//	msgs, err := readinput.LoadMessages(ctx, readinput.DefaultMessages(),
//	    msgfile.New("messages.yaml", msgfile.Options{Required: true}))
//
// Watch reports edits to a catalog so callers can reload it between reads.
package msgfile
