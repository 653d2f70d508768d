package database

import (
	"fmt"
	"time"
)

// Exclusion одна строка операционного денилиста: базовый SKU, который
// никогда не группируется, и причина его добавления. Членство в списке —
// операционные данные, а не логика алгоритма, поэтому живет в БД, а не в коде.
type Exclusion struct {
	BaseSKU   string    `json:"base_sku"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// AddExclusion добавляет или обновляет исключение
func (db *ServiceDB) AddExclusion(baseSKU, reason string) error {
	_, err := db.conn.Exec(`
		INSERT INTO exclusions (base_sku, reason, created_at) VALUES (?, ?, ?)
		ON CONFLICT(base_sku) DO UPDATE SET reason = excluded.reason`,
		baseSKU, reason, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add exclusion: %w", err)
	}
	return nil
}

// RemoveExclusion удаляет исключение; отсутствующий SKU не считается ошибкой
func (db *ServiceDB) RemoveExclusion(baseSKU string) (bool, error) {
	result, err := db.conn.Exec(`DELETE FROM exclusions WHERE base_sku = ?`, baseSKU)
	if err != nil {
		return false, fmt.Errorf("failed to remove exclusion: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check removed rows: %w", err)
	}
	return affected > 0, nil
}

// ListExclusions возвращает денилист в порядке базового SKU
func (db *ServiceDB) ListExclusions() ([]Exclusion, error) {
	rows, err := db.conn.Query(`SELECT base_sku, reason, created_at FROM exclusions ORDER BY base_sku`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}
	defer rows.Close()

	var exclusions []Exclusion
	for rows.Next() {
		var exclusion Exclusion
		var createdAt string
		if err := rows.Scan(&exclusion.BaseSKU, &exclusion.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan exclusion: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			exclusion.CreatedAt = ts
		}
		exclusions = append(exclusions, exclusion)
	}
	return exclusions, rows.Err()
}

// ExclusionSet возвращает денилист множеством для фильтра приемлемости
func (db *ServiceDB) ExclusionSet() (map[string]struct{}, error) {
	exclusions, err := db.ListExclusions()
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(exclusions))
	for _, exclusion := range exclusions {
		set[exclusion.BaseSKU] = struct{}{}
	}
	return set, nil
}
