package platform

import "github.com/atotto/clipboard"

// SystemClipboard writes through the desktop clipboard.
type SystemClipboard struct{}

func NewSystemClipboard() SystemClipboard {
	return SystemClipboard{}
}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
