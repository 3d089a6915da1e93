package analyzer

import "sort"

// Entry 频次表中的一项
type Entry struct {
	Token string
	Count int
}

// FrequencyTable 词元到出现次数的映射，额外记录首次出现顺序用于并列项排序
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// Tally 统计词元出现次数
func Tally(tokens []string) *FrequencyTable {
	t := &FrequencyTable{counts: make(map[string]int, len(tokens))}
	for _, tok := range tokens {
		if _, seen := t.counts[tok]; !seen {
			t.order = append(t.order, tok)
		}
		t.counts[tok]++
	}
	return t
}

// Count 返回词元出现次数，未出现为0
func (t *FrequencyTable) Count(token string) int {
	return t.counts[token]
}

// Len 返回不同词元的数量
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// TopK 返回出现次数最高的k项，按次数降序，次数相同按首次出现顺序
// k大于不同词元数量时返回全部
func (t *FrequencyTable) TopK(k int) []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, tok := range t.order {
		entries = append(entries, Entry{Token: tok, Count: t.counts[tok]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if k >= 0 && k < len(entries) {
		entries = entries[:k]
	}
	return entries
}
