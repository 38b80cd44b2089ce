// Package testutil provides fakes shared by the package tests.
package testutil

import "github.com/pamnotify-dev/pamnotify/domain/entities"

// PromptCall records one conversation callback made against a FakeSession.
type PromptCall struct {
	Style entities.MessageStyle
	Text  string
}

// FakeSession implements ports.Session with scripted items and recorded
// prompts. The zero value has no items and accepts every prompt.
type FakeSession struct {
	// Items maps item types to their scripted values. A present entry with
	// an empty (non-nil) slice models "present but empty".
	Items map[entities.ItemType][]byte

	// ItemCode is the host code reported for items absent from Items.
	// Types missing from both maps report Success with a nil value.
	ItemCode map[entities.ItemType]entities.ResultCode

	// PromptCode is returned by every Prompt call; the zero value accepts.
	PromptCode entities.ResultCode

	// Prompts records every conversation callback in order.
	Prompts []PromptCall
}

// Item implements ports.ItemReader.
func (s *FakeSession) Item(it entities.ItemType) ([]byte, entities.ResultCode) {
	if b, ok := s.Items[it]; ok {
		return b, entities.Success
	}
	if code, ok := s.ItemCode[it]; ok {
		return nil, code
	}
	return nil, entities.Success
}

// Prompt implements ports.Conversation.
func (s *FakeSession) Prompt(style entities.MessageStyle, text string) entities.ResultCode {
	s.Prompts = append(s.Prompts, PromptCall{Style: style, Text: text})
	return s.PromptCode
}
