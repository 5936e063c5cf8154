package core

import "github.com/pkg/errors"

// CheckInput - стандартная строка для проверочного значения пресетов
const CheckInput = "123456789"

// Model - именованный набор параметров CRC без отражения и финального XOR
type Model struct {
	Name  string
	Poly  uint64
	Init  uint64
	Check uint64 // CRC строки CheckInput
}

var models = []Model{
	{Name: "sensirion", Poly: SensirionPoly, Init: SensirionInit, Check: 0xF7},
	{Name: "crc8-nrsc5", Poly: 0x131, Init: 0xFF, Check: 0xF7},
	{Name: "crc8-smbus", Poly: 0x107, Init: 0x00, Check: 0xF4},
	{Name: "crc16-ccitt-false", Poly: 0x11021, Init: 0xFFFF, Check: 0x29B1},
	{Name: "crc16-xmodem", Poly: 0x11021, Init: 0x0000, Check: 0x31C3},
	{Name: "crc32-mpeg2", Poly: 0x104C11DB7, Init: 0xFFFFFFFF, Check: 0x0376E6E7},
}

// Models возвращает список поддерживаемых пресетов
func Models() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// LookupModel ищет пресет по имени
func LookupModel(name string) (Model, error) {
	for _, m := range models {
		if m.Name == name {
			return m, nil
		}
	}
	return Model{}, errors.Wrapf(ErrUnknownModel, "%q", name)
}

// Table строит таблицу для пресета
func (m Model) Table() (*Table, error) {
	t, err := NewTable(m.Poly, m.Init)
	if err != nil {
		return nil, errors.Wrapf(err, "model %s", m.Name)
	}
	return t, nil
}
