package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"restosim/internal/models"
	"restosim/internal/simulator"
)

// UI is the interactive terminal front end. It is pure glue: every
// state change goes through the simulator and restaurant APIs, and all
// reads come back out of them.
type UI struct {
	sim *simulator.Simulator
	in  *bufio.Scanner
	out io.Writer
}

func New(sim *simulator.Simulator, in io.Reader, out io.Writer) *UI {
	return &UI{
		sim: sim,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run drives the home-page loop until the player quits or input ends.
func (u *UI) Run() {
	for {
		u.sim.RefreshPoolIfDue()

		r := u.sim.Restaurant
		fmt.Fprintf(u.out, "\n%s\n", r.Name)
		fmt.Fprintf(u.out, "Current Day %d\n", u.sim.Day+1)
		fmt.Fprintf(u.out, "Current Revenue: $%.2f\n", r.Revenue)
		fmt.Fprintln(u.out, "[1] Display Menu\n[2] Display Employees\n[3] Hire Employee\n[4] Fire Employee")
		fmt.Fprintln(u.out, "[5] Order Menu Item\n[6] Change Menu Item Price\n[7] Go To Next Day\n[8] Quit Program")

		choice, ok := u.readInt("Choice: ")
		if !ok || choice == 8 {
			return
		}

		switch choice {
		case 1:
			u.displayMenu()
		case 2:
			u.displayHired()
		case 3:
			u.hire()
		case 4:
			u.fire()
		case 5:
			u.orderItem()
		case 6:
			u.changeItemPrice()
		case 7:
			u.advanceDay()
		}
	}
}

func (u *UI) displayMenu() {
	fmt.Fprintln(u.out, "You'll attract more customers the higher the overall quality of your menu is.")
	fmt.Fprintln(u.out, "\tItem\tPrice\tQuality\tInventory")
	for i, item := range u.sim.Restaurant.Menu {
		fmt.Fprintf(u.out, "[%d]\t%s\t%.2f\t%d\t%d\n", i+1, item.Name, item.Price, item.Quality, item.Inventory)
	}
}

func (u *UI) displayHired() {
	fmt.Fprintln(u.out, "The higher your total employees' rating, the more customers you can serve.")
	fmt.Fprintln(u.out, "\tName\tID\tWage\tPosition\tRating")
	for i, e := range u.sim.Restaurant.Hired {
		fmt.Fprintf(u.out, "[%d]\t%s\t%d\t%.2f\t%s\t%d\n", i+1, e.Name, e.ID, e.Wage, e.Role, e.Rating)
	}
}

func (u *UI) displayPotential() {
	fmt.Fprintln(u.out, "\tName\tWage\tPosition\tRating")
	for i, e := range u.sim.Restaurant.Potential {
		fmt.Fprintf(u.out, "[%d]\t%s\t%.2f\t%s\t%d\n", i+1, e.Name, e.Wage, e.Role, e.Rating)
	}
}

func (u *UI) hire() {
	for {
		u.displayPotential()
		fmt.Fprintln(u.out, "Enter 0 to return to home page")
		pick, ok := u.readInt("Choose employee to hire: ")
		if !ok || pick == 0 {
			return
		}
		if pick >= 1 && pick <= len(u.sim.Restaurant.Potential) {
			u.sim.Restaurant.Hire(pick - 1)
			u.displayHired()
			return
		}
	}
}

func (u *UI) fire() {
	for {
		u.displayHired()
		fmt.Fprintln(u.out, "Enter 0 to return to home page")
		pick, ok := u.readInt("Choose employee to fire: ")
		if !ok || pick == 0 {
			return
		}
		if pick >= 1 && pick <= len(u.sim.Restaurant.Hired) {
			u.sim.Restaurant.Fire(u.sim.Restaurant.Hired[pick-1].ID)
			u.displayHired()
			return
		}
	}
}

func (u *UI) pickItem() (models.ItemName, bool) {
	for {
		fmt.Fprintln(u.out, "[1] Burger\n[2] Fries\n[3] Soda")
		pick, ok := u.readInt("Select menu item: ")
		if !ok {
			return "", false
		}
		if pick >= 1 && pick <= len(models.MenuItemNames) {
			return models.MenuItemNames[pick-1], true
		}
	}
}

func (u *UI) orderItem() {
	name, ok := u.pickItem()
	if !ok {
		return
	}
	item, _ := u.sim.Restaurant.Item(name)
	fmt.Fprintf(u.out, "Current %s quality: %d\nCurrent inventory of %s: %d\n", name, item.Quality, name, item.Inventory)

	answer, ok := u.readLine(fmt.Sprintf("Change the quality of %s? y for yes, any other key for no: ", name))
	if !ok {
		return
	}
	if strings.EqualFold(answer, "y") {
		u.changeItemQuality(name)
	}

	amount, ok := u.readInt(fmt.Sprintf("Enter amount of %s to order: ", name))
	if !ok {
		return
	}
	u.sim.OrderInventory(name, amount)
	fmt.Fprintf(u.out, "Current %s quality: %d\nCurrent inventory of %s: %d\n", name, item.Quality, name, item.Inventory)
}

func (u *UI) changeItemQuality(name models.ItemName) {
	for {
		fmt.Fprintln(u.out, "Select quality\n[1] Low\n[2] Medium\n[3] High")
		quality, ok := u.readInt("Quality: ")
		if !ok {
			return
		}
		if quality >= 1 && quality <= 3 {
			u.sim.Restaurant.SetItemQuality(name, quality)
			return
		}
	}
}

func (u *UI) changeItemPrice() {
	name, ok := u.pickItem()
	if !ok {
		return
	}
	price, ok := u.readFloat(fmt.Sprintf("Enter the new price of %s: ", name))
	if !ok {
		return
	}
	u.sim.Restaurant.SetItemPrice(name, price)
}

func (u *UI) advanceDay() {
	summary := u.sim.SimulateDay()
	fmt.Fprintf(u.out, "Customers served: %d\n", summary.CustomersServed)
	fmt.Fprintf(u.out, "Burgers Sold: %d\n", summary.UnitsSold[models.ItemBurger])
	fmt.Fprintf(u.out, "Orders of Fries Sold: %d\n", summary.UnitsSold[models.ItemFries])
	fmt.Fprintf(u.out, "Sodas Sold: %d\n", summary.UnitsSold[models.ItemSoda])
	fmt.Fprintf(u.out, "Daily profit: $%.2f\n", summary.ProfitDelta)
}

func (u *UI) readLine(prompt string) (string, bool) {
	fmt.Fprint(u.out, prompt)
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}

// readInt re-prompts until the player types a whole number or input ends.
func (u *UI) readInt(prompt string) (int, bool) {
	for {
		line, ok := u.readLine(prompt)
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(line); err == nil {
			return n, true
		}
	}
}

func (u *UI) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := u.readLine(prompt)
		if !ok {
			return 0, false
		}
		if f, err := strconv.ParseFloat(line, 64); err == nil {
			return f, true
		}
	}
}
