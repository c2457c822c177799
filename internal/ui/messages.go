// Package ui provides the Bubble Tea host for the sunshine screens.
package ui

import "github.com/abelbrown/sunshine/internal/share"

// ShareDispatched is sent when a share request has been delivered or failed.
type ShareDispatched struct {
	Receipt share.Receipt
	Err     error
}
