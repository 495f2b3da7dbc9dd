package console

// SeedDemoData başlangıçta dört örnek kaydı yükler; SEED_DEMO_DATA ile açılır.
func (c *Console) SeedDemoData() {
	if _, err := c.employees.HireFullTime("Vikas", "vikas@example.com", 70000, 2000, 0); err != nil {
		c.logger.Error("Örnek veri yüklenemedi", map[string]interface{}{"error": err.Error()})
	}
	if _, err := c.employees.HirePartTime("Manish", "manish@example.com", 40, 100); err != nil {
		c.logger.Error("Örnek veri yüklenemedi", map[string]interface{}{"error": err.Error()})
	}
	if _, err := c.employees.HireContract("Raj", "raj@example.com", 50000); err != nil {
		c.logger.Error("Örnek veri yüklenemedi", map[string]interface{}{"error": err.Error()})
	}
	if _, err := c.employees.HireIntern("Ria", "ria@example.com", 5000); err != nil {
		c.logger.Error("Örnek veri yüklenemedi", map[string]interface{}{"error": err.Error()})
	}

	c.logger.Info("Örnek veriler yüklendi", map[string]interface{}{"count": 4})
}
