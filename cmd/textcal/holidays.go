package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/username/textcal/internal/calendar"
	"github.com/username/textcal/pkg/datemath"
	"go.uber.org/zap"
)

func holidaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays [year]",
		Short: "List the year's public holidays and bridge days",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(args)
			if err != nil {
				return err
			}
			if year < calendar.MinYear {
				return fmt.Errorf("invalid year %d: must be %d or later", year, calendar.MinYear)
			}

			logger.Info("Listing holidays", zap.Int("year", year))

			holidays := calendar.BuildHolidays(year)
			bridges := calendar.BuildBridgeDays(year, holidays)

			fmt.Printf("\n📅 Feiertage %d:\n", year)
			fmt.Println("═══════════════════════════════════════════════════════")
			fmt.Println("  Date       | Tag | Name")
			fmt.Println("  -----------+-----+--------------------------")
			for _, doy := range sortedKeys(holidays) {
				fmt.Printf("  %s | %s | %s\n", formatDay(year, doy), weekdayName(year, doy), holidays[doy])
			}

			fmt.Printf("\n🔹 Brückentage %d:\n", year)
			fmt.Println("═══════════════════════════════════════════════════════")
			if len(bridges) == 0 {
				fmt.Println("  (keine)")
			}
			for _, doy := range sortedKeys(bridges) {
				fmt.Printf("  %s | %s\n", formatDay(year, doy), weekdayName(year, doy))
			}
			fmt.Println()

			return nil
		},
		Args: cobra.MaximumNArgs(1),
	}

	return cmd
}

func sortedKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for doy := range m {
		keys = append(keys, doy)
	}
	sort.Ints(keys)
	return keys
}

func formatDay(year, doy int) string {
	month, day := datemath.DateFromDayOfYear(year, doy)
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

func weekdayName(year, doy int) string {
	names := [7]string{"Son", "Mon", "Die", "Mit", "Don", "Fre", "Sam"}
	month, day := datemath.DateFromDayOfYear(year, doy)
	return names[datemath.DayOfWeek(year, month, day)]
}
