package crcgen

import (
	"github.com/nickolajgrishuk/crcgen-go/core"
)

// Type aliases для удобства
type (
	// Table - пара таблиц lookup (с начальным значением и с нулевым)
	Table = core.Table
	// Digest - контекст инкрементального вычисления CRC
	Digest = core.Digest
	// Model - именованный пресет CRC
	Model = core.Model
	// Config - конфигурация утилит
	Config = core.Config
)

// Compute вычисляет остаток CRC для value побитовым делением
func Compute(value, poly, init uint64) (uint64, error) {
	return core.Compute(value, poly, init)
}

// NewTable строит таблицы lookup для полинома и начального значения
func NewTable(poly, init uint64) (*Table, error) {
	return core.NewTable(poly, init)
}

// NewDigest создаёт контекст инкрементального вычисления
func NewDigest(t *Table) *Digest {
	return core.NewDigest(t)
}

// Models возвращает список пресетов
func Models() []Model {
	return core.Models()
}

// LookupModel ищет пресет по имени
func LookupModel(name string) (Model, error) {
	return core.LookupModel(name)
}

// NewConfig создаёт новую конфигурацию
func NewConfig() *Config {
	return core.NewConfig()
}

// Tables возвращает общую таблицу для полинома 0x131 и init 0xFF
// Строится один раз при первом обращении
func Tables() *Table {
	return core.SensirionTable()
}

// GetCRCL1 возвращает запись общей таблицы для одного байта
func GetCRCL1(v byte, init bool) byte {
	return byte(Tables().Lookup(v, init))
}

// GetCRCL2 вычисляет CRC двух байтов через общую таблицу
// v2 - старший байт, v1 - младший
func GetCRCL2(v2, v1 byte) byte {
	return byte(Tables().Chain(v2, v1))
}

// Экспортируем константы для удобства
const (
	SensirionPoly = core.SensirionPoly
	SensirionInit = core.SensirionInit
	TableSize     = core.TableSize
)

// Ошибки
var (
	ErrInvalidPolynomial = core.ErrInvalidPolynomial
	ErrInvalidInit       = core.ErrInvalidInit
	ErrRegisterOverflow  = core.ErrRegisterOverflow
	ErrUnsupportedDegree = core.ErrUnsupportedDegree
	ErrUnknownModel      = core.ErrUnknownModel
)
