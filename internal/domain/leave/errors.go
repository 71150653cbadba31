package leave

import "errors"

var (
	ErrUnknownNoteType = errors.New("unknown leave note type")
)
