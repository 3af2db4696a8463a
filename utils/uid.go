package utils

import (
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/google/uuid"
)

const uidCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomUID 生成指定长度的随机字符串
func GenerateRandomUID(length int) string {
	r := mrand.New(mrand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = uidCharset[r.Intn(len(uidCharset))]
	}
	return string(b)
}

// GenerateSubmissionID 生成服务端答卷ID，格式：<毫秒时间戳>_<5位随机串>
func GenerateSubmissionID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), GenerateRandomUID(5))
}

// GenerateLocalID 生成客户端离线答卷ID
// 使用 local- 前缀与服务端ID区分命名空间，避免后续冲突
func GenerateLocalID() string {
	return "local-" + uuid.New().String()
}
