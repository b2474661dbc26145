package cli

import (
	"customer-directory-service/internal/domain"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// printCustomers writes one row per customer in directory order.
func printCustomers(w io.Writer, set *domain.CustomerSet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCITY\tDAYS\tLOCATION")
	for id, c := range set.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", id, c.Name, c.City, c.TripDays, location(c))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d customers\n", set.Len())
	return err
}

func location(c *domain.Customer) string {
	if !c.Geolocated() {
		return "-"
	}
	return strconv.FormatFloat(*c.Coordinates.Latitude, 'f', 4, 64) + "," +
		strconv.FormatFloat(*c.Coordinates.Longitude, 'f', 4, 64)
}
