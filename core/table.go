package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Table - пара таблиц lookup для побайтового вычисления CRC
// Таблицы заполняются один раз в NewTable и дальше только читаются
type Table struct {
	poly     uint64
	init     uint64
	degree   int
	mask     uint64
	relation uint64
	zero     [TableSize]uint64 // остатки при нулевом начальном значении
	seeded   [TableSize]uint64 // остатки при начальном значении init
}

// NewTable вычисляет обе таблицы перебором всех байтов через Compute
func NewTable(poly, init uint64) (*Table, error) {
	degree := Degree(poly)
	if degree < MinTableDegree || degree > MaxTableDegree {
		return nil, errors.Wrapf(ErrUnsupportedDegree, "degree %d not in [%d, %d]", degree, MinTableDegree, MaxTableDegree)
	}

	t := &Table{
		poly:   poly,
		init:   init,
		degree: degree,
		mask:   uint64(1)<<degree - 1,
	}

	for v := 0; v < TableSize; v++ {
		seeded, err := Compute(uint64(v), poly, init)
		if err != nil {
			return nil, err
		}
		zero, err := Compute(uint64(v), poly, 0)
		if err != nil {
			return nil, err
		}
		t.seeded[v] = seeded
		t.zero[v] = zero
	}
	t.relation = t.seeded[0]

	return t, nil
}

// Poly возвращает полином таблицы
func (t *Table) Poly() uint64 { return t.poly }

// Init возвращает начальное значение регистра
func (t *Table) Init() uint64 { return t.init }

// Degree возвращает степень полинома (ширину CRC в битах)
func (t *Table) Degree() int { return t.degree }

// Relation возвращает константу K = Compute(0, poly, init)
// По линейности seeded[v] == zero[v] ^ K для любого v
func (t *Table) Relation() uint64 { return t.relation }

// Lookup возвращает запись таблицы для байта v
// init выбирает таблицу с начальным значением, иначе с нулевым
func (t *Table) Lookup(v byte, init bool) uint64 {
	if init {
		return t.seeded[v]
	}
	return t.zero[v]
}

// Entries возвращает копию одной из таблиц
func (t *Table) Entries(init bool) [TableSize]uint64 {
	if init {
		return t.seeded
	}
	return t.zero
}

// Chain вычисляет CRC двухбайтового слова: v2 - старший байт, v1 - младший
// Первый поиск по нулевой таблице плюс K даёт регистр после v2 с начальным
// значением init, второй поиск добавляет v1
func (t *Table) Chain(v2, v1 byte) uint64 {
	crc := t.zero[v2] ^ t.relation
	return t.updateByte(crc, v1)
}

// Update продолжает вычисление CRC с регистра crc по данным data (MSB first)
func (t *Table) Update(crc uint64, data []byte) uint64 {
	crc &= t.mask
	for _, b := range data {
		crc = t.updateByte(crc, b)
	}
	return crc
}

// Checksum вычисляет CRC блока данных с начальным значением таблицы
func (t *Table) Checksum(data []byte) uint64 {
	return t.Update(t.init, data)
}

func (t *Table) updateByte(crc uint64, b byte) uint64 {
	idx := byte(crc>>(t.degree-8)) ^ b
	return (crc<<8)&t.mask ^ t.zero[idx]
}

// Format форматирует таблицу как 16 строк по 16 hex литералов через запятую
// Результат можно вставить в исходный код как литерал массива
func (t *Table) Format(init bool) string {
	entries := t.Entries(init)
	digits := (t.degree + 3) / 4

	var sb strings.Builder
	for row := 0; row < TableSize/RowSize; row++ {
		sb.WriteString("    ")
		for col := 0; col < RowSize; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "0x%0*x", digits, entries[row*RowSize+col])
		}
		sb.WriteString(",\n")
	}
	return sb.String()
}

// Dump записывает отформатированную таблицу в w
func (t *Table) Dump(w io.Writer, init bool) (int64, error) {
	n, err := io.WriteString(w, t.Format(init))
	return int64(n), err
}

// WriteTo записывает таблицу с нулевым начальным значением
// Именно она используется при побайтовом вычислении
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	return t.Dump(w, false)
}
