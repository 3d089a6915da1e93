package stopwords

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Set 停用词集合，加载完成后不再修改
type Set map[string]struct{}

// Load 递归读取目录下所有 .txt 文件，每行一个停用词
// 目录不存在或不可读时返回空集合，不报错，保证程序启动不受影响
func Load(dir string) Set {
	set := make(Set)

	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// 跳过不可读的条目，目录缺失时整个遍历直接结束
			return nil
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".txt") {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return nil
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word != "" {
				set[word] = struct{}{}
			}
		}
		return nil
	})

	return set
}

// Contains 判断是否为停用词
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len 返回停用词数量
func (s Set) Len() int {
	return len(s)
}
