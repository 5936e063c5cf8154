package core

import "testing"

// TestSensirionWord проверяет пример из документации датчика
func TestSensirionWord(t *testing.T) {
	if got := SensirionWord(0xBE, 0xEF); got != 0x92 {
		t.Errorf("SensirionWord(0xBE, 0xEF) = 0x%02X, expected 0x92", got)
	}
	if !CheckSensirionWord(0xBE, 0xEF, 0x92) {
		t.Error("CheckSensirionWord rejected valid crc")
	}
	if CheckSensirionWord(0xBE, 0xEF, 0x93) {
		t.Error("CheckSensirionWord accepted invalid crc")
	}
}

// TestSensirionParam проверяет раскладку параметра команды
func TestSensirionParam(t *testing.T) {
	p := SensirionParam(0xBEEF)
	if p != [3]byte{0xBE, 0xEF, 0x92} {
		t.Errorf("SensirionParam(0xBEEF) = % X", p)
	}
}

// TestSensirionTableShared проверяет, что таблица строится один раз
func TestSensirionTableShared(t *testing.T) {
	if SensirionTable() != SensirionTable() {
		t.Error("SensirionTable returned different instances")
	}
}
