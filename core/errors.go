package core

import "github.com/pkg/errors"

// Ошибки вычисления CRC
var (
	// ErrInvalidPolynomial - полином степени меньше 1
	ErrInvalidPolynomial = errors.New("invalid polynomial")
	// ErrInvalidInit - начальное значение шире степени полинома
	ErrInvalidInit = errors.New("initial value does not fit polynomial degree")
	// ErrRegisterOverflow - значение и остаток не помещаются в 64-битный регистр
	ErrRegisterOverflow = errors.New("register overflow")
	// ErrUnsupportedDegree - степень полинома не подходит для табличного вычисления
	ErrUnsupportedDegree = errors.New("unsupported polynomial degree for table")
	// ErrUnknownModel - неизвестный пресет
	ErrUnknownModel = errors.New("unknown crc model")
)
