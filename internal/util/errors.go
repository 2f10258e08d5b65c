package util

import "errors"

var (
	ErrNoExtractableText = errors.New("no extractable text found in PDF")
	ErrExtractionFailed  = errors.New("document extraction failed")

	ErrGenerationFailed = errors.New("answer generation failed")
)
