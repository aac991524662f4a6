package path

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 以本檔位置回推專案根目錄（utils/path → 上兩層）
func RootPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("無法取得 caller 位置")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// ConfigFile 將 --env / --config 參數轉為絕對路徑並確認檔案存在。
// 相對路徑依序以 root/dir 組合，dir 可省略（.env 放在根目錄）。
func ConfigFile(root, name string, dir ...string) (string, error) {
	if name == "" {
		return "", errors.New("config file name is empty")
	}
	resolved := name
	if !filepath.IsAbs(name) {
		resolved = filepath.Join(append(append([]string{root}, dir...), name)...)
	}
	ok, err := Exists(resolved)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", resolved, err)
	}
	if !ok {
		return "", fmt.Errorf("config file %s not found", resolved)
	}
	return resolved, nil
}

// Exists 路徑是否存在
func Exists(p string) (bool, error) {
	_, err := os.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
