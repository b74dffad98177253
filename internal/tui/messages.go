package tui

import "notekeeper/internal/domain"

type notesLoadedMsg struct {
	notes []*domain.NoteResponse
	err   error
}

type noteLoadedMsg struct {
	id   string
	note *domain.NoteResponse
	err  error
}

type noteCreatedMsg struct {
	note *domain.NoteResponse
	err  error
}

type noteUpdatedMsg struct {
	id      string
	title   string
	content string
	err     error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

type clearNoticeMsg struct{}
