package store

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, created_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE id = $1;`

	updateUsername = `UPDATE users
    SET username = $1
    WHERE id = $2
    RETURNING id, username, email, created_at;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $1
    WHERE id = $2;`

	createRecord = `INSERT INTO registros (usuario_id, geom, texto_busqueda, tipo)
    VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5)
    RETURNING id, creado_en;`

	// layerFeatureCollection aggregates every row of one catalog table into a
	// single GeoJSON FeatureCollection. The %s placeholder is filled with a
	// table name drawn exclusively from the static layer catalog, never from
	// request input; all data stays inside jsonb built by the database.
	// The feature id is synthesised with row_number() because the exposed
	// views carry no guaranteed id column.
	layerFeatureCollection = `SELECT jsonb_build_object(
        'type', 'FeatureCollection',
        'features', COALESCE(jsonb_agg(features.feature), '[]'::jsonb)
    ) AS geojson_data
    FROM (
        SELECT jsonb_build_object(
            'type', 'Feature',
            'id', row_number() OVER (),
            'properties', to_jsonb(t) - 'geom',
            'geometry', ST_AsGeoJSON(t.geom)::jsonb
        ) AS feature
        FROM public.%s AS t
    ) AS features;`
)
