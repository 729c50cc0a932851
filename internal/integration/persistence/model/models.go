package model

// AllModels lists every table model for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&TransactionModel{},
		&BudgetModel{},
		&FixedExpenseModel{},
		&GoalModel{},
		&ReportModel{},
		&UserSettingsModel{},
	}
}
