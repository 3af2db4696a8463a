package config

import (
	"log"
	"os"
)

// StorePath 答卷存储文件路径
var StorePath string

// InitStore 初始化答卷存储
// 文件不存在时写入空集合，保证首次启动即可读
func InitStore() {
	StorePath = os.Getenv("DB_FILE")
	if StorePath == "" {
		StorePath = "db.json"
	}

	if _, err := os.Stat(StorePath); os.IsNotExist(err) {
		if err := os.WriteFile(StorePath, []byte("[]"), 0o644); err != nil {
			log.Fatalf("初始化答卷存储文件失败: %v", err)
		}
		log.Printf("已创建答卷存储文件: %s", StorePath)
	}
}
