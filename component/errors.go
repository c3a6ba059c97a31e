package component

import "errors"

var (
	// ErrNoContent indicates a JSON object carried no text, translate or keybind key.
	ErrNoContent = errors.New("component has no content")

	// ErrEmptyArray indicates a JSON array with no elements.
	ErrEmptyArray = errors.New("component array is empty")

	// ErrInvalidJSON indicates JSON that cannot represent a component.
	ErrInvalidJSON = errors.New("invalid component json")

	// ErrMixedContent indicates a component with more than one of text,
	// translate and keybind set.
	ErrMixedContent = errors.New("component has more than one content kind")

	// ErrInvalidText indicates component text that is not valid UTF-8.
	ErrInvalidText = errors.New("component text is not valid utf-8")
)
