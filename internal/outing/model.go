package outing

import "fmt"

// BudgetMinutes is the daily allowance every log is measured against (12 hours).
const BudgetMinutes = 12 * 60

// NoReturn is stored in Record.Return when the outing has no recorded return.
const NoReturn = "Sin retorno"

// Record is a single logged outing. Fields are kept as the user entered them.
type Record struct {
	Date      string
	Departure string
	Return    string
	Reason    string
}

// HasReturn reports whether the record carries a return time that counts
// towards the used minutes.
func (r Record) HasReturn() bool {
	return r.Return != NoReturn
}

// Summary is the derived accounting state of a Log, ready for rendering.
type Summary struct {
	Total     int
	Used      int
	Remaining int
}

// UsedSplit returns the used minutes as hours and minutes.
func (s Summary) UsedSplit() (int, int) {
	return Split(s.Used)
}

// RemainingSplit returns the remaining minutes as hours and minutes.
func (s Summary) RemainingSplit() (int, int) {
	return Split(s.Remaining)
}

// UsedLine renders the used time the way the registration form shows it.
func (s Summary) UsedLine() string {
	h, m := s.UsedSplit()
	return fmt.Sprintf("Tiempo utilizado: %d horas %d minutos", h, m)
}

// RemainingLine renders the remaining budget the way the registration form shows it.
func (s Summary) RemainingLine() string {
	h, m := s.RemainingSplit()
	return fmt.Sprintf("Tiempo remanente: %d horas %d minutos", h, m)
}
