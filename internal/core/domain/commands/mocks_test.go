package commands

import (
	"context"

	"filekit/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockBatchScaler struct{ mock.Mock }

func (m *MockBatchScaler) ScaleFiles(ctx context.Context, paths []string, target domain.Size,
	suffix string) domain.Report {
	args := m.Called(ctx, paths, target, suffix)
	return args.Get(0).(domain.Report)
}

func (m *MockBatchScaler) ScaleDir(ctx context.Context, dir, pattern string, target domain.Size,
	suffix string) (domain.Report, error) {
	args := m.Called(ctx, dir, pattern, target, suffix)
	return args.Get(0).(domain.Report), args.Error(1)
}

type MockPrompter struct {
	mock.Mock
	said []string
}

func (m *MockPrompter) Say(text string) {
	m.said = append(m.said, text)
}

func (m *MockPrompter) AskInt(ctx context.Context, question string) (int, error) {
	args := m.Called(ctx, question)
	return args.Int(0), args.Error(1)
}

type MockSheetConverter struct{ mock.Mock }

func (m *MockSheetConverter) ConvertFiles(ctx context.Context, paths []string) domain.Report {
	args := m.Called(ctx, paths)
	return args.Get(0).(domain.Report)
}

func (m *MockSheetConverter) ConvertDir(ctx context.Context, dir string) (domain.Report, error) {
	args := m.Called(ctx, dir)
	return args.Get(0).(domain.Report), args.Error(1)
}

type MockSampleWriter struct{ mock.Mock }

func (m *MockSampleWriter) WriteSample(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

type MockGatherer struct{ mock.Mock }

func (m *MockGatherer) Gather(ctx context.Context, root, ext string, overwrite bool) (domain.Report, error) {
	args := m.Called(ctx, root, ext, overwrite)
	return args.Get(0).(domain.Report), args.Error(1)
}

func defaultSettings(dir string) *domain.Settings {
	return &domain.Settings{
		Dir: dir,
		Scale: domain.ScaleSettings{
			Width:   domain.DefaultWidth,
			Height:  domain.DefaultHeight,
			Suffix:  domain.DefaultSuffix,
			Pattern: domain.DefaultPattern,
		},
		Sheet:  domain.SheetSettings{SampleName: domain.DefaultSampleName},
		Gather: domain.GatherSettings{Ext: domain.DefaultGatherExt},
	}
}
