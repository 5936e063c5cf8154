package core

// Digest - контекст для инкрементального вычисления CRC по таблице
type Digest struct {
	table *Table
	crc   uint64
}

// NewDigest создаёт новый контекст
// Начальное значение: init таблицы
func NewDigest(t *Table) *Digest {
	return &Digest{
		table: t,
		crc:   t.init,
	}
}

// Write обновляет CRC данными p, реализует io.Writer
func (d *Digest) Write(p []byte) (int, error) {
	d.crc = d.table.Update(d.crc, p)
	return len(p), nil
}

// Update обновляет CRC новыми данными
func (d *Digest) Update(data []byte) {
	d.crc = d.table.Update(d.crc, data)
}

// Sum возвращает текущее значение CRC
func (d *Digest) Sum() uint64 {
	return d.crc
}

// Reset возвращает регистр к начальному значению
func (d *Digest) Reset() {
	d.crc = d.table.init
}
