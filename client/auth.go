package client

// 管理 PIN 在本地存储中的键
const PinStorageKey = "omid_admin_pin"

const (
	// 固定的主 PIN，始终有效，验证通过时标记会话为提升权限
	masterPin = "427726"
	// 可变 PIN 从未修改过时的默认值
	defaultPin = "0000"
)

// PinGate 管理端 PIN 门禁
// 明文存储、无哈希无锁定，定位是低保证的访问闸门而非认证系统
type PinGate struct {
	kv KV
}

// NewPinGate 创建 PIN 门禁
func NewPinGate(kv KV) *PinGate {
	return &PinGate{kv: kv}
}

// VerifyPin 校验输入的 PIN
// 返回是否通过以及是否为主 PIN
func (g *PinGate) VerifyPin(input string) (success, isMaster bool) {
	if input == masterPin {
		return true, true
	}
	return input == g.StoredPin(), false
}

// ChangePin 修改可变 PIN，直接覆盖存储值
func (g *PinGate) ChangePin(newPin string) error {
	return g.kv.Set(PinStorageKey, newPin)
}

// StoredPin 当前生效的可变 PIN
func (g *PinGate) StoredPin() string {
	if pin, ok := g.kv.Get(PinStorageKey); ok {
		return pin
	}
	return defaultPin
}
