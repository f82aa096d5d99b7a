package sale

import "fmt"

// RenderReceiptLine formats one cart line as a printable table row. The
// layout matches what the receipt printer template expects.
func RenderReceiptLine(foodName string, quantity int, price, itemTotal float64) string {
	return fmt.Sprintf(`
<tr>
    <td>%s</td>
    <td>%d</td>
    <td>KES %.2f</td>
    <td>KES %.2f</td>
</tr>
`, foodName, quantity, price, itemTotal)
}
