package domain

// CartLine — позиция корзины: товар пользователя с запрошенным количеством
// и текущим состоянием товара (цена и остаток) на момент чтения.
type CartLine struct {
	ProductID    int64
	ProductTitle string
	Amount       int64 // Запрошенное количество
	Price        int64 // Цена товара, в копейках
	Balance      int64 // Остаток товара на складе
}

// CartTotals — агрегированные итоги корзины.
type CartTotals struct {
	TotalCount int64
	TotalCost  int64 // Сумма к оплате, в копейках
}

// Reconcile вычисляет итоги корзины и проверяет достаточность остатков.
// Возвращает итоговые количество и стоимость, а также отображение
// «название товара → доступный остаток» для позиций, где запрошено больше,
// чем есть на складе. Ничего не изменяет: чисто читающая проверка.
func Reconcile(lines []CartLine) (CartTotals, map[string]int64) {
	var totals CartTotals
	shortfalls := make(map[string]int64)

	for _, line := range lines {
		if line.Amount > line.Balance {
			shortfalls[line.ProductTitle] = line.Balance
		}
		totals.TotalCount += line.Amount
		totals.TotalCost += line.Amount * line.Price
	}

	return totals, shortfalls
}
