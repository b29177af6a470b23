package voiceRepository

const (
	queryCreateProduct = `
		INSERT INTO products (
			id, artisan_id, name, category, price,
			currency, status, views, sales,
			created_at, updated_at
		) VALUES (
			:id, :artisan_id, :name, :category, :price,
			:currency, :status, 0, 0,
			:created_at, :updated_at
		)
	`

	queryFindProductsByArtisan = `
		SELECT
			id, artisan_id, name, category, price,
			currency, status, views, sales,
			created_at, updated_at
		FROM products
		WHERE artisan_id = :artisan_id AND status = :status
		ORDER BY created_at DESC
		LIMIT :limit
	`

	queryFindProductByName = `
		SELECT
			id, artisan_id, name, category, price,
			currency, status, views, sales,
			created_at, updated_at
		FROM products
		WHERE artisan_id = :artisan_id AND status = :status AND name ILIKE :name
		ORDER BY (LOWER(name) = LOWER(:exact_name)) DESC, created_at DESC
		LIMIT 1
	`

	querySumProductPerformance = `
		SELECT
			COUNT(*) AS product_count,
			COALESCE(SUM(views), 0) AS views,
			COALESCE(SUM(sales), 0) AS sales,
			COALESCE(SUM(sales * price), 0) AS revenue
		FROM products
		WHERE artisan_id = :artisan_id AND status = :status
	`

	queryAveragePriceByCategory = `
		SELECT
			category,
			COALESCE(AVG(price), 0) AS average_price,
			COUNT(*) AS product_count
		FROM products
		WHERE artisan_id = :artisan_id AND category = :category AND status = :status
		GROUP BY category
	`

	queryGetArtisanMetrics = `
		SELECT
			id, total_revenue, total_orders, rating, updated_at
		FROM artisans
		WHERE id = :id
	`

	queryFindOrdersByArtisan = `
		SELECT
			o.id, o.artisan_id, o.product_id, p.name AS product_name,
			o.quantity, o.amount, o.status, o.created_at
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.artisan_id = :artisan_id
		ORDER BY o.created_at DESC
		LIMIT :limit
	`

	queryCountPendingOrders = `
		SELECT COUNT(*)
		FROM orders
		WHERE artisan_id = :artisan_id AND status = :status
	`

	queryCreateVoiceCommand = `
		INSERT INTO voice_commands (
			id, artisan_id, session_id, language, audio_file,
			transcript, intent, action, success, response,
			audio_url, confidence, metadata, created_at
		) VALUES (
			:id, :artisan_id, :session_id, :language, :audio_file,
			:transcript, :intent, :action, :success, :response,
			:audio_url, :confidence, :metadata, :created_at
		)
	`

	queryGetVoiceCommandsByArtisan = `
		SELECT
			id, artisan_id, session_id, language, audio_file,
			transcript, intent, action, success, response,
			audio_url, confidence, metadata, created_at
		FROM voice_commands
		WHERE artisan_id = :artisan_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountVoiceCommandsByArtisan = `
		SELECT COUNT(*)
		FROM voice_commands
		WHERE artisan_id = :artisan_id
	`
)
