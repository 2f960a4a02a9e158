package repositories

import (
	"fmt"
)

// partitionPrefix is the naming convention for the monthly table sets that
// hold transactional lab-order data. Period 02/2024 lives under the
// namespace hsofttamanh0224.
const partitionPrefix = "hsofttamanh"

// PartitionNamespace builds the namespace name for a calendar month. Input
// is validated so an unchecked month or year can never name an arbitrary
// table set.
func PartitionNamespace(year, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("invalid month %d", month)
	}
	if year < 2000 || year > 2099 {
		return "", fmt.Errorf("invalid year %d", year)
	}
	return fmt.Sprintf("%s%02d%02d", partitionPrefix, month, year%100), nil
}
