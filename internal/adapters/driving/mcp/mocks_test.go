package mcp

import (
	"context"

	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

// mockConverterService is a mock implementation of driving.ConverterService.
type mockConverterService struct {
	result  *domain.ConversionResult
	numeral domain.Numeral
	err     error
	lastReq driving.ConvertRequest
}

func (m *mockConverterService) Validate(_ string, _ domain.Base) (domain.Numeral, error) {
	return m.numeral, m.err
}

func (m *mockConverterService) Convert(_ context.Context, req driving.ConvertRequest) (*domain.ConversionResult, error) {
	m.lastReq = req
	return m.result, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries []domain.HistoryEntry
	entry   *domain.HistoryEntry
	err     error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	return m.entries, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.HistoryEntry, error) {
	return m.entry, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) (int, error) {
	return len(m.entries), m.err
}

// Compile-time interface checks.
var (
	_ driving.ConverterService = (*mockConverterService)(nil)
	_ driving.HistoryService   = (*mockHistoryService)(nil)
)
