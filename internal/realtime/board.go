package realtime

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// RenderBoard prints the kitchen board: the stats line followed by one row
// per order with its quick actions. Orders with a pending change are marked
// and offer no actions.
func RenderBoard(w io.Writer, orders []order.Snapshot, stats order.Stats, pending func(kernel.UUID) bool) error {
	if _, err := fmt.Fprintf(w, "received %d  preparing %d  ready %d  active %d\n",
		stats.Received, stats.Preparing, stats.Ready, stats.Active); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tSTATUS\tITEMS\tTOTAL\tACTIONS")
	for _, o := range orders {
		status := o.Status.Label()
		actions := make([]string, 0, 2)
		if pending != nil && pending(o.ID) {
			status += " (saving)"
		} else {
			for _, a := range o.Status.QuickActions() {
				actions = append(actions, a.Label)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			o.Number, status, len(o.Lines), kernel.FormatPrice(o.Total), strings.Join(actions, ", "))
	}
	return tw.Flush()
}

// Fingerprint changes whenever an order enters, leaves or moves.
func Fingerprint(orders []order.Snapshot) string {
	var b strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&b, "%s:%d:%d;", o.ID.String(), o.Version, o.Status)
	}
	return b.String()
}
