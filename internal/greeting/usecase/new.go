package usecase

import (
	"gemini-hello/internal/greeting"
	"gemini-hello/pkg/gemini"
	pkgLog "gemini-hello/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	llm gemini.IGemini
}

// New creates a new greeting UseCase instance.
func New(l pkgLog.Logger, llm gemini.IGemini) greeting.UseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
	}
}
