package core

// Константы генератора
const (
	// TableSize - количество записей в таблице (по одной на каждый байт)
	TableSize = 256
	// RowSize - количество значений в одной строке при выводе таблицы
	RowSize = 16
	// MinTableDegree - минимальная степень полинома для табличного вычисления
	MinTableDegree = 8
	// MaxTableDegree - максимальная степень полинома для табличного вычисления
	// (8 бит значения + степень должны поместиться в uint64)
	MaxTableDegree = 56
	// RegisterBits - ширина регистра при побитовом делении
	RegisterBits = 64
)

// Параметры CRC датчиков Sensirion (SCD4x)
const (
	// SensirionPoly - полином x^8 + x^5 + x^4 + 1
	SensirionPoly = 0x131
	// SensirionInit - начальное значение регистра
	SensirionInit = 0xFF
)

// Параметры UDP утилит по умолчанию
const (
	// DefaultClientHost - адрес получателя для udp-client
	DefaultClientHost = "192.168.1.8"
	// DefaultClientPort - порт получателя для udp-client
	DefaultClientPort = 9123
	// DefaultServerHost - адрес привязки для udp-server
	DefaultServerHost = "0.0.0.0"
	// DefaultServerPort - порт привязки для udp-server
	DefaultServerPort = 9125
	// DefaultRecvBuffer - размер буфера приёма датаграммы
	DefaultRecvBuffer = 1024
	// DefaultMTU - MTU, если его не удалось получить из сокета
	DefaultMTU = 1400
	// MaxDatagramSize - максимальный payload UDP датаграммы по IPv4
	MaxDatagramSize = 65507
)

// Config - конфигурация утилит
type Config struct {
	// Poly - полином (с явным старшим коэффициентом)
	Poly uint64
	// Init - начальное значение регистра
	Init uint64
	// Host - адрес UDP
	Host string
	// Port - порт UDP
	Port uint16
	// RecvBuffer - размер буфера приёма
	RecvBuffer int
	// LogLevel - уровень логирования (debug, info, warn, error)
	LogLevel string
}

// NewConfig создаёт новую конфигурацию с значениями по умолчанию
func NewConfig() *Config {
	return &Config{
		Poly:       SensirionPoly,
		Init:       SensirionInit,
		Host:       DefaultServerHost,
		Port:       DefaultServerPort,
		RecvBuffer: DefaultRecvBuffer,
		LogLevel:   "info",
	}
}
