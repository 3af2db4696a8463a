package submission

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/h33n313/nazarsanji-omidhospital/model"
)

// Repository 定义答卷数据访问接口
type Repository interface {
	// 读取全部答卷，读取或解析失败时返回空集合
	Load() []model.Submission

	// 追加一条答卷并持久化
	Append(rec *model.Submission) error

	// 当前答卷总数
	Count() int

	// 整体替换集合内容（仅供种子数据使用）
	ReplaceAll(recs []model.Submission) error

	// 备份存储文件到指定路径
	Backup(dst string) error
}

type repositoryImpl struct {
	path string
	mu   sync.Mutex // 串行化写入，避免整文件读改写竞争
}

// NewRepository 创建 Repository 实例
func NewRepository(path string) Repository {
	return &repositoryImpl{path: path}
}

// Load 读取全部答卷
// 文件不存在或内容损坏时视为空库，不向调用方报错
func (r *repositoryImpl) Load() []model.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *repositoryImpl) loadLocked() []model.Submission {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []model.Submission{}
	}

	var recs []model.Submission
	if err := json.Unmarshal(data, &recs); err != nil {
		log.Printf("答卷数据文件解析失败，按空库处理: %v", err)
		return []model.Submission{}
	}
	if recs == nil {
		recs = []model.Submission{}
	}
	return recs
}

// Append 追加一条答卷
func (r *repositoryImpl) Append(rec *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := r.loadLocked()
	recs = append(recs, *rec)
	return r.writeLocked(recs)
}

// Count 当前答卷总数
func (r *repositoryImpl) Count() int {
	return len(r.Load())
}

// ReplaceAll 整体替换集合内容
func (r *repositoryImpl) ReplaceAll(recs []model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeLocked(recs)
}

// writeLocked 全量写盘：先写同目录临时文件再原子重命名，
// 中途崩溃不会破坏已提交的数据
func (r *repositoryImpl) writeLocked(recs []model.Submission) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, r.path)
}

// Backup 备份存储文件到指定路径
func (r *repositoryImpl) Backup(dst string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
