package schema

// SchemaSQL contains the full database schema initialization script.
// Production deployments apply the goose migrations under migrations/;
// this constant exists so integration tests can bootstrap a container
// without a migrations directory on disk.
const SchemaSQL = `
-- Item Catalog

CREATE TABLE IF NOT EXISTS items (
    item_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(100) UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    item_type VARCHAR(20) NOT NULL
        CHECK (item_type IN ('SPELLS', 'ARMOUR', 'WEAPONS', 'POTIONS')),
    price_min NUMERIC(12,2) NOT NULL CHECK (price_min >= 0),
    price_max NUMERIC(12,2) NOT NULL,
    CHECK (price_min <= price_max)
);

-- Champions

CREATE TABLE IF NOT EXISTS champions (
    champion_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    name VARCHAR(50) NOT NULL,
    money NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (money >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Shops

CREATE TABLE IF NOT EXISTS shops (
    shop_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(100) NOT NULL,
    shop_type VARCHAR(20) NOT NULL
        CHECK (shop_type IN ('SPELLS', 'ARMOUR', 'WEAPONS', 'POTIONS'))
);

-- Inventories (one per owner, cascade-deleted with the owner)

CREATE TABLE IF NOT EXISTS inventories (
    inventory_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    owner_id UUID UNIQUE NOT NULL,
    owner_kind VARCHAR(10) NOT NULL CHECK (owner_kind IN ('CHAMPION', 'SHOP')),
    capacity INTEGER NOT NULL DEFAULT 12 CHECK (capacity > 0)
);

-- Inventory Slots, keyed by (inventory, item, rarity)

CREATE TABLE IF NOT EXISTS inventory_slots (
    inventory_id UUID NOT NULL REFERENCES inventories(inventory_id) ON DELETE CASCADE,
    item_id UUID NOT NULL REFERENCES items(item_id) ON DELETE RESTRICT,
    rarity VARCHAR(10) NOT NULL
        CHECK (rarity IN ('COMMON', 'UNCOMMON', 'RARE', 'EPIC', 'LEGENDARY')),
    quantity INTEGER NOT NULL CHECK (quantity >= 0),
    unit_price NUMERIC(12,2) NOT NULL CHECK (unit_price > 0),
    PRIMARY KEY (inventory_id, item_id, rarity)
);

CREATE INDEX IF NOT EXISTS idx_inventory_slots_item ON inventory_slots (item_id);
`
