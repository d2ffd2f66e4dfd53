package services

import (
	"sort"
	"strings"
	"sync"

	"jims/constants"
	"jims/dto"
	"jims/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// StockStatus derives the stock bucket from the unit count
func StockStatus(stock int) string {
	if stock == 0 {
		return constants.StockStatusOut
	}
	if stock <= constants.LowStockThreshold {
		return constants.StockStatusLow
	}
	return constants.StockStatusIn
}

// StockTotal is the extended amount of an item line
func StockTotal(stock int, price float64) float64 {
	return float64(stock) * price
}

// ApplyDerivedFields recomputes status and totalAmount from the
// current stock and price. Called on every write.
func ApplyDerivedFields(item *models.InventoryItem) {
	item.Status = StockStatus(item.Stock)
	item.TotalAmount = StockTotal(item.Stock, item.ProductPrice)
}

// NormalizeInput lowercases and strips diacritics for matching
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// CalculateSimilarity scores two strings on levenshtein distance,
// 1.0 meaning identical.
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func prepareCategoryList(items []models.InventoryItem) []string {
	uniqueValues := make(map[string]bool)
	for _, item := range items {
		if item.Category != "" {
			uniqueValues[NormalizeInput(item.Category)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func scoreItem(query string, item models.InventoryItem, cmCategory *closestmatch.ClosestMatch) int {
	score := 0
	normalizedName := NormalizeInput(item.ProductName)

	if strings.Contains(normalizedName, query) {
		score += 20
	} else if CalculateSimilarity(query, normalizedName) > 0.7 {
		score += 12
	}

	if cmCategory != nil && item.Category != "" &&
		cmCategory.Closest(query) == NormalizeInput(item.Category) {
		score += 5
	}

	return score
}

// SearchInventory fuzzy-matches items against a free-text query and
// returns them ordered by score
func SearchInventory(query string, items []models.InventoryItem) []dto.ScoredItem {
	normalizedQuery := NormalizeInput(query)

	var cmCategory *closestmatch.ClosestMatch
	if categories := prepareCategoryList(items); len(categories) > 0 {
		cmCategory = createMatcher(categories)
	}

	scoreCh := make(chan dto.ScoredItem, len(items))
	var wg sync.WaitGroup

	for _, item := range items {
		wg.Add(1)
		go func(item models.InventoryItem) {
			defer wg.Done()
			score := scoreItem(normalizedQuery, item, cmCategory)
			if score > 0 {
				scoreCh <- dto.ScoredItem{
					Item:  item,
					Score: score,
				}
			}
		}(item)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []dto.ScoredItem
	for scoredItem := range scoreCh {
		scored = append(scored, scoredItem)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
