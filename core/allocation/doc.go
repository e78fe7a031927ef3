// Package allocation assigns examinees to (day, round, lab) slots.
//
// The fill order is fixed: days in ascending order, rounds within a day,
// labs in catalog order, then seats within a lab. Item k always lands on the
// slot reached after k prior fills, so identical inputs produce identical
// plans. ComputePlan is pure; SummaryTable, Report and ExportGroups are read
// only projections of the resulting Plan.
package allocation
