// Package msgenv loads message table overrides from environment variables.
//
// Key normalization: INT__OVERFLOW → int.overflow, NOT_UTF8 → not_utf8
//
// Example:
//
//	source := msgenv.New(msgenv.Options{Prefix: "APP_MSG_"})
//	msgs, err := readinput.LoadMessages(ctx, readinput.DefaultMessages(), source)
package msgenv
