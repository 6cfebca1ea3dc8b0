package domain

// Category описывает категорию каталога.
// Категории образуют лес: ParentID ссылается на родительскую категорию или nil для корневой.
type Category struct {
	ID       int64
	Title    string
	Slug     string
	ParentID *int64
}

func NewCategory(title, slug string, parentID *int64) *Category {
	return &Category{
		Title:    title,
		Slug:     slug,
		ParentID: parentID,
	}
}

// SubTreeIDs возвращает множество идентификаторов категории root и всех её
// подкатегорий на любую глубину. Работает по снимку таблицы категорий
// (id, parent_id): строит отображение родитель→дети и обходит дерево в ширину.
// Посещённые узлы не обходятся повторно, поэтому обход завершается даже если
// в данных образовался цикл родительских ссылок.
func SubTreeIDs(categories []Category, rootID int64) map[int64]struct{} {
	children := make(map[int64][]int64, len(categories))
	for _, cat := range categories {
		if cat.ParentID == nil {
			continue
		}
		children[*cat.ParentID] = append(children[*cat.ParentID], cat.ID)
	}

	result := map[int64]struct{}{rootID: {}}
	queue := []int64{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, childID := range children[id] {
			if _, ok := result[childID]; ok {
				continue
			}
			result[childID] = struct{}{}
			queue = append(queue, childID)
		}
	}

	return result
}
