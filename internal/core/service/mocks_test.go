package service

import (
	"image"

	"filekit/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockCodec struct{ mock.Mock }

func (m *MockCodec) Load(path string) (*domain.Raster, error) {
	args := m.Called(path)
	raster, _ := args.Get(0).(*domain.Raster)
	return raster, args.Error(1)
}

func (m *MockCodec) Save(path string, img image.Image) error {
	args := m.Called(path, img)
	return args.Error(0)
}

type MockScaler struct{ mock.Mock }

func (m *MockScaler) Scale(raster *domain.Raster, target domain.Size) (*image.NRGBA, error) {
	args := m.Called(raster, target)
	canvas, _ := args.Get(0).(*image.NRGBA)
	return canvas, args.Error(1)
}

type MockWorkbook struct{ mock.Mock }

func (m *MockWorkbook) ReadRows(path string) ([][]string, error) {
	args := m.Called(path)
	rows, _ := args.Get(0).([][]string)
	return rows, args.Error(1)
}

func (m *MockWorkbook) WriteRows(path, sheet string, rows [][]any) error {
	args := m.Called(path, sheet, rows)
	return args.Error(0)
}

type MockTable struct{ mock.Mock }

func (m *MockTable) WriteTable(path string, rows [][]string) error {
	args := m.Called(path, rows)
	return args.Error(0)
}

type MockMover struct{ mock.Mock }

func (m *MockMover) Move(src, dst string, overwrite bool) error {
	args := m.Called(src, dst, overwrite)
	return args.Error(0)
}
