package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandDigits 生成 n 位数字验证码，允许前导零。
// 整段一次取随机数再补零格式化，避免逐位采样。
func RandDigits(n int) (string, error) {
	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	x, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", n, x), nil
}
