package core

import "sync"

var (
	// sensirionTable - таблица lookup для CRC датчиков Sensirion
	sensirionTable *Table
	// sensirionOnce - однократная инициализация таблицы
	sensirionOnce sync.Once
)

// SensirionTable возвращает общую таблицу для полинома 0x131 и init 0xFF
// Таблица строится при первом вызове и больше не меняется
func SensirionTable() *Table {
	sensirionOnce.Do(func() {
		t, err := NewTable(SensirionPoly, SensirionInit)
		if err != nil {
			// Параметры константные, ошибка означает поломку NewTable
			panic(err)
		}
		sensirionTable = t
	})
	return sensirionTable
}

// SensirionWord вычисляет CRC слова датчика: b2 - старший байт, b1 - младший
func SensirionWord(b2, b1 byte) byte {
	return byte(SensirionTable().Chain(b2, b1))
}

// CheckSensirionWord проверяет CRC, пришедший вместе со словом
func CheckSensirionWord(b2, b1, crc byte) bool {
	return SensirionWord(b2, b1) == crc
}

// SensirionParam раскладывает 16-битный параметр команды в байты с CRC
func SensirionParam(v uint16) [3]byte {
	b2 := byte(v >> 8)
	b1 := byte(v)
	return [3]byte{b2, b1, SensirionWord(b2, b1)}
}
