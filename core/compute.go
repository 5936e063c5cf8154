package core

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Degree возвращает степень полинома (длина в битах минус 1)
// Для полиномов 0 и 1 возвращает 0
func Degree(poly uint64) int {
	if poly == 0 {
		return 0
	}
	return bits.Len64(poly) - 1
}

// ValueBits возвращает ширину значения в битах, округлённую вверх до байта
// Ноль считается однобайтовым значением
func ValueBits(value uint64) int {
	if value == 0 {
		return 8
	}
	return ((bits.Len64(value)-1)/8 + 1) * 8
}

// Compute вычисляет остаток CRC для value делением столбиком над GF(2)
//
// Начальное значение init выравнивается по старшему краю значения,
// после чего к значению дописываются degree нулевых бит. Полином
// сдвигается к верху расширенного регистра и за value_bits шагов
// "вычитается" (XOR) везде, где проверяемый бит установлен.
//
// Регистр строится как (value << degree) ^ (init << value_bits), что равно
// (value ^ (init << (value_bits - degree))) << degree, но определено и когда
// степень полинома больше ширины значения.
func Compute(value, poly, init uint64) (uint64, error) {
	degree := Degree(poly)
	if degree < 1 {
		return 0, errors.Wrapf(ErrInvalidPolynomial, "polynomial 0x%x has degree %d", poly, degree)
	}
	if bits.Len64(init) > degree {
		return 0, errors.Wrapf(ErrInvalidInit, "init 0x%x is wider than %d bits", init, degree)
	}

	valueBits := ValueBits(value)
	if valueBits+degree > RegisterBits {
		return 0, errors.Wrapf(ErrRegisterOverflow, "%d value bits + degree %d", valueBits, degree)
	}

	reg := value<<degree ^ init<<valueBits
	divisor := poly << (valueBits - 1)
	checkOne := uint64(1) << (degree + valueBits - 1)

	for i := 0; i < valueBits; i++ {
		if reg&checkOne != 0 {
			reg ^= divisor
		}
		divisor >>= 1
		checkOne >>= 1
	}

	return reg, nil
}

// MustCompute - как Compute, но паникует при ошибке
// Предназначена для констант, заданных в коде
func MustCompute(value, poly, init uint64) uint64 {
	crc, err := Compute(value, poly, init)
	if err != nil {
		panic(err)
	}
	return crc
}
