package theme

import "testing"

func TestByNameFallback(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %s", got)
	}
	if got := ByName("solarized").Name; got != "flexoki-dark" {
		t.Errorf("unknown theme = %s, want flexoki-dark", got)
	}
}

func TestRolesFilled(t *testing.T) {
	for _, th := range All {
		if th.Income == "" || th.Expense == "" || th.Over == "" || th.Selected == "" {
			t.Errorf("%s has empty role colors: %+v", th.Name, th)
		}
	}
}

func TestBudgetColor(t *testing.T) {
	th := FlexokiDark
	cases := []struct {
		pct  float64
		over bool
		want string
	}{
		{10, false, string(th.Income)},
		{60, false, string(th.Yellow)},
		{90, false, string(th.Warning)},
		{100, true, string(th.Over)},
	}
	for _, c := range cases {
		if got := string(th.BudgetColor(c.pct, c.over)); got != c.want {
			t.Errorf("BudgetColor(%v, %v) = %s, want %s", c.pct, c.over, got, c.want)
		}
	}
}
